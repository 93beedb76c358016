package entity

// SaleState — то, что переживает границу процесса между запусками.
// Signature хранится только для диагностики и ни на что не влияет.
type SaleState struct {
	SaleActive    bool
	LastSignature string
}
