package web

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"specialroom-backend/internal/flash"
	"specialroom-backend/internal/form"
	"specialroom-backend/internal/mw"
	"specialroom-backend/internal/parse"
)

// Card is a service tile on the home page.
type Card struct {
	Title string
	Icon  string
	Text  string
}

type homePage struct {
	Page
	Cards []Card
	Rooms []Card
}

var homeCards = []Card{
	{Title: "ห้องพิเศษ", Icon: "building", Text: "ข้อมูลห้องพัก สิ่งอำนวยความสะดวก และราคา"},
	{Title: "ข่าวสารและกิจกรรม", Icon: "news", Text: "อัปเดตกิจกรรมและข่าวสารล่าสุดจากโรงพยาบาล"},
	{Title: "ข้อมูลหน่วยงาน", Icon: "info", Text: "แนะนำข้อมูลเกี่ยวกับโรงพยาบาลและบริการต่าง ๆ"},
}

var homeRooms = []Card{
	{Title: "ห้องพิเศษแบบเตียงเดี่ยว", Icon: "/static/img/room-single.svg"},
	{Title: "ห้องพิเศษแบบสองเตียง", Icon: "/static/img/room-double.svg"},
}

// Home handles GET /.
func (s *Site) Home(c *gin.Context) {
	s.render(c, http.StatusOK, "home", homePage{
		Page:  s.page(c, "ระบบจองห้องพิเศษออนไลน์", RouteHome),
		Cards: homeCards,
		Rooms: homeRooms,
	})
}

// Option is one choice of a select or radio group.
type Option struct {
	Value string
	Label string
}

var treatmentRights = []Option{
	{Value: "government", Label: "ข้าราชการ"},
	{Value: "gold", Label: "บัตรทอง"},
	{Value: "social", Label: "ประกันสังคม"},
	{Value: "volunteer", Label: "อสม."},
}

var (
	titles      = []string{"นาย", "นาง", "นางสาว"}
	departments = []string{"อายุรกรรม", "ศัลยกรรม", "กุมารเวช"}
	monthsTH    = numbered("ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.", "ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.")
	days        = numbered(dayLabels()...)
	roomRules   = []string{
		"ก่อนออกจากห้องตรวจ ต้องได้รับอนุญาตจากแพทย์",
		"กรอกข้อมูลตามแบบฟอร์มให้ครบถ้วน",
		"จองห้องพิเศษล่วงหน้าได้ไม่เกิน 1 วัน",
		"ห้องพิเศษมีผู้เข้าพักได้ 1 คน",
	}
)

// numbered gives the labels the values 1..n.
func numbered(labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, l := range labels {
		out[i] = Option{Value: strconv.Itoa(i + 1), Label: l}
	}
	return out
}

func dayLabels() []string {
	out := make([]string, 31)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

type specialRoomPage struct {
	Page
	Values      url.Values
	Errors      form.Errors
	Titles      []string
	Rights      []Option
	Departments []string
	Days        []Option
	Months      []Option
	Rules       []string
	YearHint    int
}

func (s *Site) specialRoomPage(c *gin.Context) specialRoomPage {
	return specialRoomPage{
		Page:        s.page(c, "จองห้องพิเศษออนไลน์", RouteSpecialRoom),
		Values:      url.Values{},
		Titles:      titles,
		Rights:      treatmentRights,
		Departments: departments,
		Days:        days,
		Months:      monthsTH,
		Rules:       roomRules,
		YearHint:    parse.YearBE(time.Now().In(s.loc)),
	}
}

// SpecialRoom handles GET /special-room.
func (s *Site) SpecialRoom(c *gin.Context) {
	s.render(c, http.StatusOK, "special_room", s.specialRoomPage(c))
}

// SubmitSpecialRoom handles POST /special-room. Requests are validated and
// logged; there is no booking backend to hand them to yet.
func (s *Site) SubmitSpecialRoom(c *gin.Context) {
	req, errs, err := form.BindSpecialRoom(c.Request, s.loc)
	if err != nil {
		s.fail(c, err)
		return
	}
	if errs != nil {
		p := s.specialRoomPage(c)
		p.Values = c.Request.PostForm
		p.Errors = errs
		s.errorToast(&p.Page, errs.Summary())
		s.render(c, http.StatusUnprocessableEntity, "special_room", p)
		return
	}

	mw.Log(c).Info("special room request received",
		zap.String("cid", req.MaskedCitizenID()),
		zap.String("right", req.Right),
		zap.String("department", req.Department),
		zap.String("room", req.RoomPrice),
		zap.Time("admit_date", req.AdmitDate),
	)
	s.redirect(c, RouteSpecialRoom, flash.Success, "บันทึกข้อมูลสำเร็จ")
}

type contactPage struct {
	Page
	Values url.Values
	Errors form.Errors
}

// Contact handles GET /contact.
func (s *Site) Contact(c *gin.Context) {
	s.render(c, http.StatusOK, "contact", contactPage{
		Page:   s.page(c, "ติดต่อเรา", RouteContact),
		Values: url.Values{},
	})
}

// SubmitContact handles POST /contact.
func (s *Site) SubmitContact(c *gin.Context) {
	msg, errs, err := form.BindContact(c.Request)
	if err != nil {
		s.fail(c, err)
		return
	}
	if errs != nil {
		p := contactPage{
			Page:   s.page(c, "ติดต่อเรา", RouteContact),
			Values: c.Request.PostForm,
			Errors: errs,
		}
		s.errorToast(&p.Page, "กรุณาตรวจสอบข้อมูลอีกครั้ง")
		s.render(c, http.StatusUnprocessableEntity, "contact", p)
		return
	}

	mw.Log(c).Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.Int("message_length", len([]rune(msg.Message))),
	)
	s.redirect(c, RouteContact, flash.Success, "ส่งข้อความเรียบร้อยแล้ว")
}
