package form

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"specialroom-backend/internal/parse"
)

var (
	citizenIDRe = regexp.MustCompile(`^[0-9]{13}$`)
	phoneRe     = regexp.MustCompile(`^0[0-9]{9}$`)

	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom validation tags on gin's validator.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("form: gin validator engine is not validator/v10")
			return
		}
		if err := v.RegisterValidation("citizenid", matchField(citizenIDRe)); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("thphone", matchField(phoneRe))
	})
	return registerErr
}

func matchField(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Errors maps form field names to the message shown next to them.
type Errors map[string]string

// Has reports whether the field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// bind trims every submitted value, maps it onto dst and validates the
// result. Mapping failures are reported under the "_form" key.
// checkboxes are the form keys posted by checkboxes. A checkbox without a
// value attribute posts "on", which the bool mapping does not accept.
var checkboxes = map[string]bool{"acceptRule": true}

func bind(r *http.Request, dst any, messages map[string]fieldMessage) (Errors, error) {
	if err := Register(); err != nil {
		return nil, err
	}
	if err := r.ParseForm(); err != nil {
		return Errors{"_form": "ข้อมูลที่ส่งมาไม่ถูกต้อง"}, nil
	}

	values := make(map[string][]string, len(r.PostForm))
	for key, vs := range r.PostForm {
		trimmed := make([]string, len(vs))
		for i, v := range vs {
			v = strings.TrimSpace(v)
			if checkboxes[key] && v == "on" {
				v = "true"
			}
			trimmed[i] = v
		}
		values[key] = trimmed
	}

	if err := binding.MapFormWithTag(dst, values, "form"); err != nil {
		return Errors{"_form": "ข้อมูลที่ส่งมาไม่ถูกต้อง"}, nil
	}

	err := binding.Validator.ValidateStruct(dst)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("form validation failed: %w", err)
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		m, ok := messages[fe.StructField()]
		if !ok {
			out[fe.StructField()] = "ข้อมูลไม่ถูกต้อง"
			continue
		}
		if _, seen := out[m.field]; !seen {
			out[m.field] = m.text
		}
	}
	return out, nil
}

type fieldMessage struct {
	field string
	text  string
}

// SpecialRoomRequest is the special-room booking form.
type SpecialRoomRequest struct {
	Title       string `form:"title" binding:"omitempty,oneof=นาย นาง นางสาว"`
	FirstName   string `form:"firstName" binding:"required"`
	LastName    string `form:"lastName" binding:"required"`
	CitizenID   string `form:"cid" binding:"required,citizenid"`
	AN          string `form:"an"`
	HN          string `form:"hn"`
	Right       string `form:"right" binding:"required,oneof=government gold social volunteer other"`
	RightOther  string `form:"rightOther" binding:"required_if=Right other"`
	AdmitDay    int    `form:"admitDay" binding:"required,min=1,max=31"`
	AdmitMonth  int    `form:"admitMonth" binding:"required,min=1,max=12"`
	AdmitYear   int    `form:"admitYear" binding:"required,min=2567"`
	Department  string `form:"department" binding:"required,oneof=อายุรกรรม ศัลยกรรม กุมารเวช"`
	RoomPrice   string `form:"roomPrice" binding:"required"`
	BookerName  string `form:"bookerName" binding:"required"`
	Phone       string `form:"phone" binding:"required,thphone"`
	AdmitReason string `form:"admitReason" binding:"required"`
	AcceptRule  bool   `form:"acceptRule" binding:"required"`

	AdmitDate time.Time `form:"-"`
}

var specialRoomMessages = map[string]fieldMessage{
	"Title":       {"title", "คำนำหน้าไม่ถูกต้อง"},
	"FirstName":   {"firstName", "กรุณากรอกชื่อ"},
	"LastName":    {"lastName", "กรุณากรอกนามสกุล"},
	"CitizenID":   {"cid", "เลขบัตรประชาชนต้องเป็นตัวเลข 13 หลัก"},
	"Right":       {"right", "กรุณาเลือกสิทธิการรักษา"},
	"RightOther":  {"rightOther", "โปรดระบุสิทธิการรักษา (อื่น ๆ)"},
	"AdmitDay":    {"admitDate", "กรุณาเลือกวันที่เข้ารักษา"},
	"AdmitMonth":  {"admitDate", "กรุณาเลือกวันที่เข้ารักษา"},
	"AdmitYear":   {"admitDate", "ปีที่เข้ารักษาต้องไม่น้อยกว่า 2567"},
	"Department":  {"department", "กรุณาเลือกแผนกผู้ป่วย"},
	"RoomPrice":   {"roomPrice", "กรุณากรอกประเภทหรือราคาห้องพิเศษ"},
	"BookerName":  {"bookerName", "กรุณากรอกชื่อผู้จอง"},
	"Phone":       {"phone", "เบอร์ติดต่อต้องขึ้นต้นด้วย 0 และมี 10 หลัก"},
	"AdmitReason": {"admitReason", "กรุณากรอกสาเหตุการ Admit"},
	"AcceptRule":  {"acceptRule", "กรุณายอมรับเงื่อนไข"},
}

// BindSpecialRoom reads and validates a special-room booking submission.
// A nil Errors means the request is valid.
func BindSpecialRoom(r *http.Request, loc *time.Location) (SpecialRoomRequest, Errors, error) {
	var req SpecialRoomRequest
	errs, err := bind(r, &req, specialRoomMessages)
	if err != nil || errs != nil {
		return req, errs, err
	}

	d, err := parse.AdmitDate(req.AdmitDay, req.AdmitMonth, req.AdmitYear, loc)
	if err != nil {
		return req, Errors{"admitDate": "วันที่เข้ารักษาไม่ถูกต้อง"}, nil
	}
	req.AdmitDate = d
	return req, nil, nil
}

// Summary is the toast text for a rejected special-room submission.
func (e Errors) Summary() string {
	if len(e) == 1 && e.Has("rightOther") {
		return e["rightOther"]
	}
	return "กรอกข้อมูลให้ครบถ้วนและยอมรับเงื่อนไข"
}

// MaskedCitizenID keeps only the last four digits, for logs.
func (r SpecialRoomRequest) MaskedCitizenID() string {
	if len(r.CitizenID) <= 4 {
		return r.CitizenID
	}
	return strings.Repeat("x", len(r.CitizenID)-4) + r.CitizenID[len(r.CitizenID)-4:]
}

// ContactMessage is the contact page form. Every field is optional.
type ContactMessage struct {
	Name    string `form:"name" binding:"max=200"`
	Email   string `form:"email" binding:"omitempty,email"`
	Message string `form:"message" binding:"max=2000"`
}

var contactMessages = map[string]fieldMessage{
	"Name":    {"name", "ชื่อยาวเกินไป"},
	"Email":   {"email", "รูปแบบอีเมลไม่ถูกต้อง"},
	"Message": {"message", "ข้อความยาวเกินไป"},
}

// BindContact reads and validates a contact form submission.
func BindContact(r *http.Request) (ContactMessage, Errors, error) {
	var msg ContactMessage
	errs, err := bind(r, &msg, contactMessages)
	return msg, errs, err
}
