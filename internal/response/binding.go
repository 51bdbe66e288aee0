package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
)

// Mensajes por campo y regla, los mismos que tenía el esquema de la base.
var fieldMessages = map[string]string{
	"Remark.max":        "備註最多 200 個字",
	"Payment.required":  "沒有付款方式",
	"Name.required":     "使用者名稱必填",
	"Name.min":          "使用者名稱最少 2 個字",
	"Name.max":          "使用者名稱最多 20 個字",
	"Phone.required":    "電話號碼必填",
	"Phone.min":         "電話號碼最少 9 個字",
	"Phone.max":         "電話號碼最多 10 個字",
	"Account.required":  "電子信箱必填",
	"Account.email":     "信箱格式錯誤",
	"Password.required": "請輸入密碼",
	"Class.required":    "沒有商品分類",
}

// BindError responde 400 con el mensaje del primer campo inválido.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			Fail(c, http.StatusBadRequest, msg)
			return
		}
	}
	Fail(c, http.StatusBadRequest, MsgBadFormat)
}
