// Package ast defines the typed node tree a tokenized Sieve script is
// delivered as.
//
// The tree is produced by an external tokenizer and crosses the process
// boundary as JSON, one node per Sieve command or test:
//
//	[
//	  {"Type": "Require", "List": ["fileinto", "imap4flags"]},
//	  {"Type": "Comment", "Text": "/**\r\n * @type and\r\n * @comparator contains\r\n */"},
//	  {
//	    "Type": "If",
//	    "If": {"Tests": [
//	      {"Type": "Header", "Headers": ["Subject"], "Keys": ["invoice"],
//	       "Match": {"Type": "Contains"}}
//	    ], "Type": "AllOf"},
//	    "Then": [{"Type": "FileInto", "Name": "Billing"}]
//	  }
//	]
//
// Node is a tagged union: Type selects which of the remaining fields are
// meaningful, everything else stays at its zero value. The package never
// interprets nodes; it only carries them and knows how to deep-copy them.
package ast
