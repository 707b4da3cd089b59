// Package render turns entity fields into package artifacts.
//
// Templates live under templates/ and are embedded at build time. Each is
// addressed by its path relative to that directory ("items/item.json") and
// receives a flat Vars map. Values spliced into JSON string positions go
// through the quote function; pre-rendered JSON fragments (component
// objects, serialized states) are inserted verbatim.
//
// Every artifact is passed through Format before it is written, which
// doubles as a check that the template produced valid JSON.
package render
