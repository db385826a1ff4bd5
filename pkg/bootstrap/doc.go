// Package bootstrap provides common initialization for facecodes binaries.
//
// It currently covers logger setup with optional file rotation:
//
//	func main() {
//	    cfg := &Config{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        log.Fatal(err)
//	    }
//	    cfg.Log.ApplyDefaults()
//
//	    err := bootstrap.InitLoggerWithOptions(cfg.Log, bootstrap.LoggerOptions{
//	        ServiceName: "facecodes",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
package bootstrap
