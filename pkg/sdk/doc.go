// Package dinemenu provides an in-process Go client for a restaurant menu
// served by a JSON item source, with an optional Valkey snapshot cache.
//
//	client, _ := dinemenu.New(ctx,
//	    dinemenu.WithSourceURL("http://10.0.0.5:3000/api/items"),
//	    dinemenu.WithValkey("localhost:6379", ""),
//	)
//	defer client.Close()
//
//	page, _ := client.Browse(ctx, dinemenu.AllCategories, "pizza")
//	for _, e := range page.Items {
//	    fmt.Println(e.Name, dinemenu.FormatRate(e.Rate))
//	}
//
// The filtering and rate helpers are pure functions and can be used on any
// []Item without a client.
package dinemenu
