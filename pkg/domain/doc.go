/*
Package domain contains the core data model of the mael converter.

It defines what a markdown source becomes once it has been read, and what the
composers receive once it has been shaped. The package is kept free of I/O and
of any rendering concern.

# Key Entities

  - Document: one markdown source (title, summary lines, raw steps).
  - Step: an ordered record of field title to value, produced in file order.
  - Sheet: a shaped output unit (document, final columns, shaped steps).
*/
package domain
