package domain

// UpgradeKey identifies a one-time purchasable upgrade.
type UpgradeKey string

const (
	UpgradePremiumFood UpgradeKey = "premiumFood"
	UpgradeFancyToy    UpgradeKey = "fancyToy"
	UpgradeComfyBed    UpgradeKey = "comfyBed"
)

// UpgradeKeys lists every upgrade in shop order.
var UpgradeKeys = []UpgradeKey{UpgradePremiumFood, UpgradeFancyToy, UpgradeComfyBed}

// Upgrades holds the purchased flags. Flags never revert.
type Upgrades struct {
	PremiumFood bool `json:"premiumFood"`
	FancyToy    bool `json:"fancyToy"`
	ComfyBed    bool `json:"comfyBed"`
}

// Has reports whether key is owned. Unknown keys are never owned.
func (u Upgrades) Has(key UpgradeKey) bool {
	switch key {
	case UpgradePremiumFood:
		return u.PremiumFood
	case UpgradeFancyToy:
		return u.FancyToy
	case UpgradeComfyBed:
		return u.ComfyBed
	}
	return false
}

// Grant marks key as owned and reports whether the key is known.
func (u *Upgrades) Grant(key UpgradeKey) bool {
	switch key {
	case UpgradePremiumFood:
		u.PremiumFood = true
	case UpgradeFancyToy:
		u.FancyToy = true
	case UpgradeComfyBed:
		u.ComfyBed = true
	default:
		return false
	}
	return true
}

// Upgrade is a shop listing.
type Upgrade struct {
	Key         UpgradeKey `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Cost        int        `json:"cost"`
	Owned       bool       `json:"owned"`
}

// UpgradeDescriptions holds display text per upgrade.
var UpgradeDescriptions = map[UpgradeKey]struct{ Name, Description string }{
	UpgradePremiumFood: {"Premium Food", "Meals restore hunger twice as fast."},
	UpgradeFancyToy:    {"Fancy Toy", "Play restores happiness twice as fast."},
	UpgradeComfyBed:    {"Comfy Bed", "Naps restore energy twice as fast."},
}
