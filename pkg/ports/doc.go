/*
Package ports defines the boundaries between the conversion core and its
collaborators.

# Key Interfaces

  - DocumentSource: lists and opens the markdown sources of a project (directory, memory).
  - Composer: renders shaped sheets into an output format (workbook, CSV, TSV, memory grid).
*/
package ports
