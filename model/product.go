package model

// Product is one catalog row relevant to placement. Number is the stable
// unique identifier. Columns the registry does not consume are kept verbatim
// in Other so that re-saving the catalog never drops them.
type Product struct {
	Number      string `mapstructure:"number" json:"number"`
	Name        string `mapstructure:"name" json:"name"`
	Attribute   string `mapstructure:"attribute" json:"attribute"`
	Category    string `mapstructure:"category" json:"category"`
	SubCategory string `mapstructure:"subcategory" json:"subcategory"`
	Unit        string `mapstructure:"unit" json:"unit"`

	Other map[string]string `mapstructure:",remain" json:"-"`

	// Derived per selected warehouse, recomputed on every mutation.
	// Never persisted.
	TotalQty   int    `mapstructure:"-" json:"total_qty"`
	ActiveUnit string `mapstructure:"-" json:"active_unit"`
}
