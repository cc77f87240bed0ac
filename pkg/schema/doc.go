// Package schema implements the declarative column schema of a conversion run.
//
// A schema file declares three ordered mappings of column name to condition
// (prepend, column_conditions, append) and two global defaults:
//
//	global:
//	  duplicate_previous_for_blank: false
//	  overwrite_for_repeat: false
//	prepend:
//	  No.:
//	    type: increment
//	    width: 6
//	column_conditions:
//	  Categories:
//	    type: list
//	  Description:
//	    width: 50
//	append:
//	  Result:
//	    alignment: center
//
// Conditions that omit duplicate_previous_for_blank inherit the global value.
// Tokens for type (increment, string, list) and alignment (left, center, right)
// are case-insensitive; any other token is a fatal configuration error.
//
// Parse returns the all-defaults schema when the file is missing or empty.
// The schema is immutable once parsed; Defaults is threaded explicitly into
// every condition resolution instead of being read from ambient state.
package schema
