/*
Package mael converts structured markdown documents into spreadsheet output
(an Excel workbook, or one CSV/TSV file per document), driven by a small
declarative column schema.

# Concept

A project is a directory of markdown files plus an optional config directory:

	project/
	  login.md
	  checkout.md
	  config/
	    columns.yml          column schema (prepend, column_conditions, append)
	    variables.ini        "{{ name }}" substitutions
	    variables_prod.ini   overrides for --environment prod
	    ignore.txt           documents (or glob patterns) to skip

Each document has a title, a summary and a list of steps:

	# Login

	## Summary
	Logging in as {{ user }}.

	## Steps
	### Action
	* open the page
	* type the password
	### Expected
	The dashboard is shown.
	---
	### Action
	* log out

Every document becomes one sheet (or one delimited file). Each "###" field
becomes a column; steps are separated by "---" or by a repeated field title.
The column schema adds numbered columns, splits list columns into
"Action (1)", "Action (2)" ... and decides which blank cells inherit the value
above them.

# Usage

	conv, err := mael.New("./project", mael.WithFormat("csv"), mael.WithEnvironment("prod"))
	if err != nil {
		log.Fatal(err)
	}
	path, err := conv.Convert(context.Background())

# Key Features

  - Deterministic output: documents in lexical order, columns in first-seen order.
  - Pluggable formats through the registry returned by Formats.
  - Lifecycle hooks and Prometheus metrics for every run.
*/
package mael
