// Package cursor parses the opaque pagination cursors handed out by list
// endpoints.
//
// A cursor has the form "<value>:<offset>[:<is_prev>]", for example
// "0:40:0". The value is opaque to this package. The offset is the end
// offset of the page the cursor was issued for, which is what range labels
// are computed from.
package cursor
