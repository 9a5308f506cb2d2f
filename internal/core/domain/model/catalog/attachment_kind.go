package catalog

// AttachmentKind enumerates the attachments a Package can reference.
type AttachmentKind int

const (
	AttachmentHotel AttachmentKind = iota + 1
	AttachmentGuide
	AttachmentCarRental
)

var attachmentKinds = []AttachmentKind{AttachmentHotel, AttachmentGuide, AttachmentCarRental}

// AttachmentKinds returns every kind in a stable order.
func AttachmentKinds() []AttachmentKind {
	out := make([]AttachmentKind, len(attachmentKinds))
	copy(out, attachmentKinds)
	return out
}

// String returns the kind name used in logs, errors and metric labels.
func (k AttachmentKind) String() string {
	switch k {
	case AttachmentHotel:
		return "hotel"
	case AttachmentGuide:
		return "guide"
	case AttachmentCarRental:
		return "car_rental"
	default:
		return "unknown"
	}
}

// Table returns the storage table holding rows of this kind.
func (k AttachmentKind) Table() string {
	switch k {
	case AttachmentHotel:
		return "hotels"
	case AttachmentGuide:
		return "guides"
	case AttachmentCarRental:
		return "car_rentals"
	default:
		return ""
	}
}

// ForeignKey returns the package's reference for this kind, or nil.
func (k AttachmentKind) ForeignKey(p *Package) *int64 {
	if p == nil {
		return nil
	}
	switch k {
	case AttachmentHotel:
		return p.HotelID
	case AttachmentGuide:
		return p.GuideID
	case AttachmentCarRental:
		return p.CarRentalID
	default:
		return nil
	}
}

// IsResolved reports whether the package holds a composed attachment of this kind.
func (k AttachmentKind) IsResolved(p *Package) bool {
	if p == nil {
		return false
	}
	switch k {
	case AttachmentHotel:
		return p.Hotel.IsPresent()
	case AttachmentGuide:
		return p.Guide.IsPresent()
	case AttachmentCarRental:
		return p.CarRental.IsPresent()
	default:
		return false
	}
}
