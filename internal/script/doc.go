// Package script hosts user-supplied Lua cell formatters, the grid's
// renderer-side extension point. A formatter turns a raw cell value
// into display text; it never participates in filtering, sorting or
// editing, so a broken script can only misprint a cell.
//
// Scripts run in a restricted Lua state: the file and chunk loading
// primitives are removed, and a misbehaving or error-raising formatter
// falls back to the default string form.
package script
