package models

const (
	DefaultShopName    = "Blue Flame Barbers"
	DefaultShopAddress = "123 Fade Ave, Suite 7, Your City"
	DefaultShopPhone   = "(555) 123-4567"
	DefaultShopAbout   = "Precision fades, classic cuts, and warm vibes. Book your seat and leave sharp."
)

func DefaultShopHours() map[string]string {
	return map[string]string{
		"Mon-Fri": "9:00 AM - 8:00 PM",
		"Sat":     "9:00 AM - 6:00 PM",
		"Sun":     "Closed",
	}
}

type ShopInfo struct {
	ID DocID `bson:"_id,omitempty" json:"_id,omitempty"`

	Name    string            `bson:"name" json:"name"`
	Address string            `bson:"address" json:"address"`
	Phone   string            `bson:"phone" json:"phone"`
	Email   *string           `bson:"email" json:"email"`
	Hours   map[string]string `bson:"hours" json:"hours"`
	About   *string           `bson:"about" json:"about"`
}

// ShopInfoInput leaves every field optional; absent fields take the shop
// defaults.
type ShopInfoInput struct {
	Name    *string           `json:"name"`
	Address *string           `json:"address"`
	Phone   *string           `json:"phone"`
	Email   *string           `json:"email" validate:"omitnil,email"`
	Hours   map[string]string `json:"hours"`
	About   *string           `json:"about"`
}

func (in ShopInfoInput) Record() ShopInfo {
	about := DefaultShopAbout
	s := ShopInfo{
		Name:    DefaultShopName,
		Address: DefaultShopAddress,
		Phone:   DefaultShopPhone,
		Email:   in.Email,
		Hours:   in.Hours,
		About:   &about,
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.About != nil {
		s.About = in.About
	}
	if s.Hours == nil {
		s.Hours = DefaultShopHours()
	}
	return s
}

// DefaultShopInfo is served when no shop document has been stored yet.
func DefaultShopInfo() ShopInfo {
	return ShopInfoInput{}.Record()
}
