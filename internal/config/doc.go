// Package config loads varselect configuration.
//
// Configuration comes from, in increasing priority: built-in defaults, an
// optional YAML file and VARSELECT_* environment variables, where nested
// keys use underscores (server.port becomes VARSELECT_SERVER_PORT).
//
//	server:
//	  host: 0.0.0.0
//	  port: 8001
//	root: /srv/data
//	file_filter_regex: "^\\."
//	restrict_with_filter: true
//	extensions: [.nc, .csv]
//	log:
//	  level: debug
//	  format: json
package config
