/*
Package history defines core domain entities related to command history.
*/
package history

/*
CommandFrequency represents a command line and how many times it was
dispatched. This is a core domain entity.
*/
type CommandFrequency struct {
	Command string
	Count   int
}
