// Package report renders standardization results for human consumption.
// Output is a plain-text table suitable for terminals and logs.
package report
