package models

// NoDataPlaceholder is rendered where an optional field has no value.
const NoDataPlaceholder = "ไม่มีข้อมูล"

// Label returns the Thai display text for a prize status.
func (r PrizeResult) Label() string {
	switch r {
	case PrizeResultPending:
		return "ยังไม่ประกาศรางวัล"
	case PrizeResultNo:
		return "ไม่ถูกรางวัล"
	case PrizeResultYes:
		return "ถูกรางวัล"
	}
	return string(r)
}

// ASCIILabel returns the ASCII display text for a prize status, used in
// generated documents that only carry core fonts.
func (r PrizeResult) ASCIILabel() string {
	switch r {
	case PrizeResultPending:
		return "Pending"
	case PrizeResultNo:
		return "No prize"
	case PrizeResultYes:
		return "Won"
	}
	return string(r)
}

// Label returns the Thai display text for a prize tier. The empty tier
// renders as "no prize".
func (t PrizeType) Label() string {
	switch t {
	case PrizeTypeFirst:
		return "รางวัลที่ 1"
	case PrizeTypeNearFirst:
		return "รางวัลข้างเคียงที่ 1"
	case PrizeTypeSecond:
		return "รางวัลที่ 2"
	case PrizeTypeThird:
		return "รางวัลที่ 3"
	case PrizeTypeFourth:
		return "รางวัลที่ 4"
	case PrizeTypeFifth:
		return "รางวัลที่ 5"
	case PrizeTypeFront3:
		return "สามตัวหน้า"
	case PrizeTypeBack3:
		return "สามตัวท้าย"
	case PrizeTypeBack2:
		return "สองตัวท้าย"
	}
	return "ไม่ถูกรางวัล"
}

// ASCIILabel returns the ASCII display text for a prize tier.
func (t PrizeType) ASCIILabel() string {
	switch t {
	case PrizeTypeFirst:
		return "First prize"
	case PrizeTypeNearFirst:
		return "Near first prize"
	case PrizeTypeSecond:
		return "Second prize"
	case PrizeTypeThird:
		return "Third prize"
	case PrizeTypeFourth:
		return "Fourth prize"
	case PrizeTypeFifth:
		return "Fifth prize"
	case PrizeTypeFront3:
		return "Front three digits"
	case PrizeTypeBack3:
		return "Last three digits"
	case PrizeTypeBack2:
		return "Last two digits"
	}
	return "No prize"
}
