// Geckofeed - Geckoboard Custom Widget Feeds for Go HTTP Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geckofeed

/*
Package supervisor runs the long-lived parts of geckofeed under suture v4.

	RootSupervisor ("geckofeed")
	├── StatsSupervisor ("stats-layer")
	│   └── selfstats.Sampler
	└── APISupervisor ("api-layer")
	    └── services.HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog (backed by the zerolog global logger via
logging.NewSlogLogger) and counted in geckofeed_supervisor_events_total.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddStatsService(sampler)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
