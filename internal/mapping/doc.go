// Package mapping provides the YAML mapping file: which packages to load,
// which structs to generate row mappers for, and per-field directives that
// override the rowmap struct tags.
//
// # Schema Overview
//
//	version: "1"
//	packages: ["./models"]          # a single string is accepted too
//	decodable: ["decimal.Decimal"]  # types decoded by a registry decoder
//	output: ""                      # defaults to each package's directory
//	targets:
//	  - type: Account
//	    package: ""                 # import path or name, when ambiguous
//	    wrap_optional: false
//	    wrapped_name: ""            # defaults to OptionalAccount
//	    fields:
//	      - name: ID
//	        try_from: string
//	      - name: Email
//	        rename: email_address
//
// A directive set in the file replaces the same directive of the tag; the
// other directives of the tag are kept.
package mapping
