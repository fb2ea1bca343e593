package eventType

const (
	ProcessStart = "process.start" // fired once before the root command runs; a listener error aborts startup
	ProcessExit  = "process.exit"  // fired when the server shuts down

	ConfigUpdated = "config.updated" // carries "old" and "new" conf.Config values

	ServerInitializeStart = "server.routers.start" // carries "engine" (*gin.Engine); listeners register their routes here
	ServerInitializeDone  = "server.routers.done"  // all routes registered, listener about to start

	PluginDiscovered = "plugin.discovered"  // external manifest found during a scan, carries "id" and "valid"
	PluginLoaded     = "plugin.loaded"      // a plugin's resources finished loading, carries "id"
	PluginLoadFailed = "plugin.load.failed" // resource loading failed, carries "id" and "error"

	// In-process mirrors of the dashboard store mutations. The bus only
	// accepts dotted names; the websocket hub translates these back to the
	// slash-namespaced mutation names the browser store dispatches.
	UiInjectionRegisterContextMenuItem = "uiInjection.registerPluginContextMenuItem"
	UiInjectionInjectComponent         = "uiInjection.injectComponent"

	SchedulerEveryMinute   = "scheduler.everyminute"   // fires every minute
	SchedulerEvery5Minutes = "scheduler.every5minutes" // fires every five minutes
)
