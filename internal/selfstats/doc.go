// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package selfstats provides built-in feeds that report on the geckofeed
process itself, one for each widget type:

	goroutines         number       current and previous goroutine count
	heap               geck-o-meter heap allocated vs. obtained from the OS
	memory             pie chart    heap, stacks, other
	uptime             text         uptime and Go version
	heap-history       line chart   heap allocated per sample
	goroutine-history  line chart   goroutines per sample (legacy format)
	gc-cycles          bar chart    GC cycles between samples
	gc-pause           bullet       latest GC pause vs. history
	feed-traffic       leaderboard  feed requests per widget type
	feed-outcomes      RAG          errors, rejected, served
	feed-funnel        funnel       received, authorized, served
	runtime            custom       Go runtime facts

Runtime views read snapshots recorded by Sampler, a suture service. Feed
traffic views read geckofeed_feed_requests_total back from the Prometheus
registry.
*/
package selfstats
