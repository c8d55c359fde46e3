package invest

// assetClasses is the closed, ordered list of classes offered to users.
var assetClasses = []string{
	"Stocks",
	"Real Estate Funds",
	"Fixed Income",
	"International",
	"Crypto",
	"Commodities",
	"Other",
}

// AssetClasses returns the asset classes users pick from when recording a
// holding or editing the target allocation.
//
// Calculations do not depend on this list: they work with whatever class
// names appear in their inputs.
func AssetClasses() []string {
	return append([]string(nil), assetClasses...)
}

// IsAssetClass reports whether class is one of AssetClasses.
func IsAssetClass(class string) bool {
	for _, c := range assetClasses {
		if c == class {
			return true
		}
	}
	return false
}
