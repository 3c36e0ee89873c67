/*
Package mws builds signed query requests for Amazon Marketplace Web Services
(MWS) using AWS Signature Version 2. See the authoritative documentation at
https://docs.developer.amazonservices.com/en_US/dev_guide/DG_ClientLibraries.html
for details.

The signing algorithm is briefly described here.

Step 1: normalize all request parameters into a flat map of string keys to
string values.

    - Every request carries `AWSAccessKeyId`, `Action`, `SellerId`,
      `SignatureMethod` (always `HmacSHA256`), `SignatureVersion` (always `2`),
      `Timestamp` and `Version`.
    - `MWSAuthToken` is added only when a delegation token is present. An
      empty token produces no entry at all.
    - Caller-supplied parameter names in snake_case are camelized
      (`custom_param` becomes `CustomParam`). One level of nested maps is
      supported and flattens to the MWS dotted convention
      (`FooBar.BazQux=1`).
    - Timestamps render as ISO-8601 with seconds precision and an explicit
      UTC offset, such as `2013-01-01T00:00:00-02:00`. The offset supplied by
      the caller is preserved; normalizing to UTC would change the signature.
    - Booleans render as lowercase `true`/`false`, numbers in their natural
      decimal form. Parameters whose rendered value is empty are dropped.
    - List parameters expand to one entry per value with 1-based dotted keys:
      a list labelled `Id.id` with values 1 and 2 becomes `Id.id.1=1` and
      `Id.id.2=2`.

Step 2: make the canonical string `<METHOD>\n<HOST>\n<PATH>\n<QUERY>`.

    - `METHOD`: `GET` or `POST`.
    - `HOST`: the endpoint host in lower case, without a port.
    - `PATH`: the URL path component, starting with `/`. Use `/` if empty.
    - `QUERY`: the normalized parameters sorted by key in byte order, each
      key and value percent-encoded, joined as `key=value` pairs with `&`.

Step 3: calculate `base64(hmacsha256(SECRET, CANONICAL))`, where `SECRET` is
the seller's secret access key. The result is the request signature.

Step 4: add the signature to the query as the `Signature` parameter,
percent-encoded and re-sorted with the rest, and assemble the request URI as
`https://<HOST><PATH>?<SIGNED_QUERY>`.

Percent-encoding note: characters `A-Z a-z 0-9 - _ . ~` are literal and all
other bytes encode as `%HH` with upper-case hex, except that MWS renders
space as `+` rather than the `%20` generic Signature V2 prescribes. The same
encoder is used for the canonical string and the transport query; splitting
them causes signature mismatches at the endpoint.
*/
package mws
