// Package nav implements the single-page navigation layer of the
// ZoundZ Nation site: a page cache, a router state machine, an
// opportunistic preloader and history synchronization.
//
// # Router
//
// The Router resolves an artist key to its content fragment (cache
// hit or on-demand fetch) and drives the panel transition through a
// host-provided Surface:
//
//	router := nav.NewRouter(nav.RouterConfig{
//	    Catalog: catalog,
//	    Cache:   cache,
//	    Fetcher: fetcher,
//	    Surface: surface,
//	    History: stack,
//	})
//	router.Navigate(ctx, "ravex", true)
//
// Unknown keys are silent no-ops. Failed fetches abandon the
// transition and leave the user where they are; nothing in this
// package is fatal to the host.
//
// # Preload
//
// The Preloader warms the cache with every catalog page the first
// time it is triggered, fetching concurrently and awaiting every
// fetch regardless of individual failures:
//
//	preloader.Trigger(ctx) // later calls are no-ops
//
// # History
//
// Stack emulates browser session history; HistorySync replays popped
// entries without re-pushing them and resolves initial deep links
// with replace-not-push semantics:
//
//	stack.SetPopHandler(func(e nav.Entry) { sync.HandlePop(ctx, e) })
//	sync.HandleInitialFragment(ctx, "#artist/inferno")
package nav
