/*
Package observability provides Prometheus metrics for conversion runs.

Metrics are kept in a private registry so that several converters (and tests)
can coexist in one process. They are exposed over HTTP by the serve command and
can be dumped to a node-exporter textfile after a build.
*/
package observability
