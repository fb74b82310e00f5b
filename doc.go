// Package fixerhub embeds the FixerHub matching core: a directory of service
// professionals, a filter-based matcher, and a rule-based assistant that turns
// a free-text problem description into a search.
//
// Storage is in-memory by default, or Valkey/Redis for shared deployments.
//
// # Searching the directory
//
//	client, _ := fixerhub.New(fixerhub.WithSeedFile("config/seed.yaml"))
//	defer client.Close()
//
//	res, _ := client.Search().
//	    Query("leak").
//	    MaxPrice(90).
//	    VerifiedOnly().
//	    Do(ctx)
//	fmt.Println(res.Title, len(res.Professionals))
//
// # Assistant hand-off
//
//	conv, _ := client.Assistant().Start(ctx)
//	conv, _ = client.Assistant().Send(ctx, conv.ID, "my sink has a leak")
//	sel, _ := client.Assistant().Select(ctx, conv.ID, "Leak Repair")
//	if sel.Actionable {
//	    fmt.Println(sel.Results.Title)
//	}
package fixerhub
