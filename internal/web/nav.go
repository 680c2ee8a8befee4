package web

const (
	RouteHome         = "/"
	RouteSpecialRoom  = "/special-room"
	RouteCheckBooking = "/checkbooking-status"
	RouteProgress     = "/booking-progress"
	RouteContact      = "/contact"
)

// NavLink is one entry of the header menu.
type NavLink struct {
	Href  string
	Label string
}

var navLinks = []NavLink{
	{Href: RouteHome, Label: "หน้าแรก"},
	{Href: RouteSpecialRoom, Label: "จองห้องพิเศษ"},
	{Href: RouteCheckBooking, Label: "ตรวจสอบการจอง"},
	{Href: RouteContact, Label: "ติดต่อเรา"},
}

// Hospital details shown in the header and footer.
const (
	HospitalURL    = "https://www.ppkhosp.go.th/default.php"
	HospitalNameTH = "โรงพยาบาลพระปกเกล้าจันทบุรี"
	HospitalNameEN = "PHRAPOKKLAO HOSPITAL"
)
