// Package config provides configuration types and loading for facecodes
// tooling: logging, node identity and vendor message tables.
//
// Usage:
//
//	import "github.com/Goden-Gun/facecodes/pkg/config"
//
//	type MyConfig struct {
//	    App    config.AppConfig    `yaml:"app" mapstructure:"app"`
//	    Log    config.LogConfig    `yaml:"log" mapstructure:"log"`
//	    Vendor config.VendorConfig `yaml:"vendor" mapstructure:"vendor"`
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        return nil, err
//	    }
//	    cfg.App.ApplyDefaults()
//	    cfg.Log.ApplyDefaults()
//	    return cfg, nil
//	}
package config
