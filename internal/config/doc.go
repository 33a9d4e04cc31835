// Package config provides configuration parsing for muon projects.
//
// The configuration is stored in muon.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "addr": ":8080",
//	    "readTimeout": "5s"
//	  },
//	  "document": {
//	    "lang": "en",
//	    "doctype": "html",
//	    "title": "Example"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "muon",
//	    "path": "/metrics"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "muon"
//	  },
//	  "publish": {
//	    "dir": "dist",
//	    "bucket": "my-site",
//	    "prefix": "docs/",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Server.Addr)
package config
