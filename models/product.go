package models

// Unit is the sales unit of a catalog product.
type Unit string

const (
	UnitPieces Unit = "шт."
	UnitBunch  Unit = "пуч."
	UnitBox    Unit = "короб."
)

// Product is a flower-catalog row keyed by the supplier's VBN code.
// The Show* flags control which attributes are displayed to clients.
type Product struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	VBN              string `gorm:"index;not null" json:"vbn"`
	EngDesc          string `gorm:"index" json:"eng_desc"`
	VBNFull          string `gorm:"index" json:"vbn_full"`
	VBNGroup         string `json:"vbn_group"`
	VBNGroupDesc     string `json:"vbn_group_desc"`
	VBNGroupRusDesc  string `json:"vbn_group_rus_desc"`
	SubgroupRus      string `json:"subgroup_rus"`
	SortRus          string `json:"sort_rus"`
	ColorRus         string `json:"color_rus"`
	ShowColor        bool   `gorm:"default:true" json:"show_color"`
	Units            Unit   `json:"units"`
	Comment          string `json:"comment"`
	ShowComment      bool   `gorm:"default:false" json:"show_comment"`
	Multiplicity     string `json:"multiplicity"`
	ShowMultiplicity bool   `gorm:"default:false" json:"show_multiplicity"`
	Diameter         string `json:"diameter"`
	ShowDiameter     bool   `gorm:"default:false" json:"show_diameter"`
	Grower           string `json:"grower"`
	ShowGrower       bool   `gorm:"default:false" json:"show_grower"`
	Supplier         string `json:"supplier"`
	ShowSupplier     bool   `gorm:"default:false" json:"show_supplier"`
	Length           int    `gorm:"default:0" json:"length"`
	ShowLength       bool   `gorm:"default:false" json:"show_length"`
}

type ProductUpdate struct {
	EngDesc     *string `json:"eng_desc"`
	VBNFull     *string `json:"vbn_full"`
	Units       *Unit   `json:"units"`
	Comment     *string `json:"comment"`
	ShowComment *bool   `json:"show_comment"`
	Grower      *string `json:"grower"`
	Supplier    *string `json:"supplier"`
	Length      *int    `json:"length"`
}
