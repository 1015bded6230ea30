// Package logging wraps log/slog for structured logging across Sentry.
//
// Every record carries service and version fields; level, format and
// destination come from the logging section of config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// JSON output is for deployments, text for working on a rule at a
// terminal. Use With to tag a component:
//
//	log := logging.New(cfg.Logging, version)
//	storeLog := log.With("component", "scenario")
//
// Never log scenario blobs wholesale at info level or above; they can
// name entities a site considers sensitive.
package logging
