package form

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpecialRoom() url.Values {
	return url.Values{
		"title":       {"นาย"},
		"firstName":   {" สมชาย "},
		"lastName":    {"ใจดี"},
		"cid":         {"1234567890123"},
		"right":       {"gold"},
		"admitDay":    {"14"},
		"admitMonth":  {"10"},
		"admitYear":   {"2569"},
		"department":  {"อายุรกรรม"},
		"roomPrice":   {"ห้องเดี่ยว 1,500 บาท"},
		"bookerName":  {"สมหญิง ใจดี"},
		"phone":       {"0812345678"},
		"admitReason": {"ผ่าตัด"},
		"acceptRule":  {"on"},
	}
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/special-room", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestBindSpecialRoom_Valid(t *testing.T) {
	req, errs, err := BindSpecialRoom(postForm(validSpecialRoom()), time.UTC)
	require.NoError(t, err)
	assert.Nil(t, errs)

	assert.Equal(t, "สมชาย", req.FirstName)
	assert.True(t, req.AcceptRule)
	assert.Equal(t, time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC), req.AdmitDate)
	assert.Equal(t, "xxxxxxxxx0123", req.MaskedCitizenID())
}

func TestBindSpecialRoom_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(url.Values)
		field  string
	}{
		{"blank first name", func(v url.Values) { v.Set("firstName", "   ") }, "firstName"},
		{"short citizen id", func(v url.Values) { v.Set("cid", "12345") }, "cid"},
		{"citizen id with letters", func(v url.Values) { v.Set("cid", "12345678901ab") }, "cid"},
		{"phone without leading zero", func(v url.Values) { v.Set("phone", "8123456789") }, "phone"},
		{"phone too long", func(v url.Values) { v.Set("phone", "08123456789") }, "phone"},
		{"unknown right", func(v url.Values) { v.Set("right", "private") }, "right"},
		{"other right without detail", func(v url.Values) { v.Set("right", "other") }, "rightOther"},
		{"unknown department", func(v url.Values) { v.Set("department", "ทันตกรรม") }, "department"},
		{"year before 2567", func(v url.Values) { v.Set("admitYear", "2566") }, "admitDate"},
		{"missing day", func(v url.Values) { v.Del("admitDay") }, "admitDate"},
		{"impossible date", func(v url.Values) { v.Set("admitDay", "31"); v.Set("admitMonth", "2") }, "admitDate"},
		{"rules not accepted", func(v url.Values) { v.Del("acceptRule") }, "acceptRule"},
		{"unknown title", func(v url.Values) { v.Set("title", "ดร.") }, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validSpecialRoom()
			tt.mutate(values)

			_, errs, err := BindSpecialRoom(postForm(values), time.UTC)
			require.NoError(t, err)
			require.NotNil(t, errs)
			assert.True(t, errs.Has(tt.field), "errors: %v", errs)
		})
	}
}

func TestBindSpecialRoom_OtherRightWithDetail(t *testing.T) {
	values := validSpecialRoom()
	values.Set("right", "other")
	values.Set("rightOther", "ประกันเอกชน")

	_, errs, err := BindSpecialRoom(postForm(values), time.UTC)
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestBindSpecialRoom_NonNumericDay(t *testing.T) {
	values := validSpecialRoom()
	values.Set("admitDay", "สิบ")

	_, errs, err := BindSpecialRoom(postForm(values), time.UTC)
	require.NoError(t, err)
	assert.True(t, errs.Has("_form"))
}

func TestBind_OnOnlyMapsCheckboxes(t *testing.T) {
	values := validSpecialRoom()
	values.Set("admitReason", "on")

	req, errs, err := BindSpecialRoom(postForm(values), time.UTC)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.True(t, req.AcceptRule)
	assert.Equal(t, "on", req.AdmitReason)

	msg, errs, err := BindContact(postForm(url.Values{"message": {"on"}}))
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, "on", msg.Message)
}

func TestErrors_Summary(t *testing.T) {
	assert.Equal(t, "โปรดระบุสิทธิการรักษา (อื่น ๆ)", Errors{"rightOther": "โปรดระบุสิทธิการรักษา (อื่น ๆ)"}.Summary())
	assert.Equal(t, "กรอกข้อมูลให้ครบถ้วนและยอมรับเงื่อนไข", Errors{"rightOther": "x", "phone": "y"}.Summary())
}

func TestBindContact(t *testing.T) {
	msg, errs, err := BindContact(postForm(url.Values{"name": {"ก"}, "email": {"a@example.com"}, "message": {" สวัสดี "}}))
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, "สวัสดี", msg.Message)

	_, errs, err = BindContact(postForm(url.Values{}))
	require.NoError(t, err)
	assert.Nil(t, errs, "every contact field is optional")

	_, errs, err = BindContact(postForm(url.Values{"email": {"not-an-email"}}))
	require.NoError(t, err)
	assert.True(t, errs.Has("email"))
}
