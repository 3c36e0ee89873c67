package mws_test

import (
	"fmt"
	"time"

	mws "github.com/federicorota/mws-go"
)

func ExampleQuery_RequestURI() {
	q, err := mws.New(
		mws.WithHost("mws-eu.amazonservices.com"),
		mws.WithCredential("key", "secret"),
		mws.WithAction("ListOrders"),
		mws.WithSellerID("Seller ID"),
		mws.WithVersion("2010-01-01"),
		// Change the fixed timestamp to time.Now() before use.
		mws.WithTimestamp(time.Date(2013, time.January, 1, 0, 0, 0, 0, time.FixedZone("", -2*60*60))))
	if err != nil {
		panic(err)
	}

	fmt.Println(q.RequestURI())

	// Output:
	// https://mws-eu.amazonservices.com/?AWSAccessKeyId=key&Action=ListOrders&SellerId=Seller+ID&Signature=7XZO1dSv7BHElkee33Rt7L5PNFiBET13pg3pOWKeoo0%3D&SignatureMethod=HmacSHA256&SignatureVersion=2&Timestamp=2013-01-01T00%3A00%3A00-02%3A00&Version=2010-01-01
}

func ExampleQuery_Sign() {
	q, err := mws.New(
		mws.WithHost("mws-eu.amazonservices.com"),
		mws.WithCredential("key", "secret"),
		mws.WithAction("ListOrders"),
		mws.WithSellerID("Seller ID"),
		mws.WithVersion("2010-01-01"),
		mws.WithAuthToken("auth_token"),
		mws.WithTimestamp(time.Date(2013, time.January, 1, 0, 0, 0, 0, time.FixedZone("", -2*60*60))))
	if err != nil {
		panic(err)
	}

	fmt.Println(q.Sign())

	// Output:
	// rulqZzJFN7YyHfW5kMatF4cXNzxZcOAox6lT97PveCo=
}

func ExampleWithParamList() {
	q, err := mws.New(
		mws.WithHost("mws-eu.amazonservices.com"),
		mws.WithCredential("key", "secret"),
		mws.WithAction("GetOrder"),
		mws.WithSellerID("Seller ID"),
		mws.WithVersion("2013-09-01"),
		mws.WithTimestamp(time.Date(2013, time.January, 1, 0, 0, 0, 0, time.FixedZone("", -2*60*60))),
		mws.WithParamList("AmazonOrderId.Id", "902-3159896-1390916", "058-1233752-8214740"))
	if err != nil {
		panic(err)
	}

	fmt.Println(q.QueryString())

	// Output:
	// AWSAccessKeyId=key&Action=GetOrder&AmazonOrderId.Id.1=902-3159896-1390916&AmazonOrderId.Id.2=058-1233752-8214740&SellerId=Seller+ID&SignatureMethod=HmacSHA256&SignatureVersion=2&Timestamp=2013-01-01T00%3A00%3A00-02%3A00&Version=2013-09-01
}
