// Package parse parses configuration object text into a doc.Document.
//
// # Usage
//
//	d, err := parse.Parse([]byte(`{ name = "alice", ports = {80, 443} }`))
//	if err != nil {
//	    return err
//	}
//
// # Related Packages
//
//   - github.com/signadot/confq/doc - parsed document representation
//   - github.com/signadot/confq/token - tokenization
//   - github.com/signadot/confq/query - path resolution over documents
package parse
