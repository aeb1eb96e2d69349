// Package sahayata embeds the welfare scheme search engine in Go programs.
//
// A Client opens one catalog backend (PostgreSQL, Valkey, Redis or an
// embedded Badger store) and answers the same questions as the HTTP API:
//
//	client, _ := sahayata.New(ctx, sahayata.WithBadger("/var/lib/sahayata"))
//	defer client.Close()
//
//	matches, _ := client.Search(ctx, "farmer loan", sahayata.English, 5)
//	reply, _ := client.Chat(ctx, "రైతు రుణం", sahayata.Telugu)
//
//	profile := sahayata.NewProfile().Age(67).Occupation("Farmer").Build()
//	res, _ := client.CheckEligibility(ctx, profile)
//
// For tests and demos a fixture can be served from memory:
//
//	client, _ := sahayata.New(ctx, sahayata.WithInMemory(), sahayata.WithSeedFile("catalog.yaml"))
package sahayata
