package types

type ConversionResult struct {
	InputFile     string
	OutputFile    string
	RowsProcessed int
}
