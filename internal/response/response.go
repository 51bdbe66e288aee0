// Package response arma el sobre {success, message} y traduce errores a códigos HTTP.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"miniattic-api/internal/dto"
	"miniattic-api/internal/repository"
	"miniattic-api/internal/service"
)

// Mensajes visibles para el cliente
const (
	MsgQueryOK        = "資料查詢成功"
	MsgCreated        = "資料建立成功"
	MsgUpdated        = "資料更新成功"
	MsgDeleted        = "資料已移除"
	MsgOrderPlaced    = "訂單送出成功"
	MsgProductUpdated = "商品更新成功"
	MsgRegistered     = "會員註冊成功"
	MsgLoginOK        = "登入成功"
	MsgLogout         = "掰掰，歡迎下次再來"
	MsgImageUploaded  = "圖片上傳成功"

	MsgEmptyOrder     = "訂單沒有商品"
	MsgAuthMissing    = "未登入"
	MsgAuthExpired    = "登入過期"
	MsgAuthInvalid    = "Token異常"
	MsgNoAccess       = "沒有權限"
	MsgBadCredentials = "帳號密碼錯誤"
	MsgNotFound       = "找不到資料"
	MsgImageNotFound  = "找不到圖片"
	MsgDuplicate      = "編號重複"
	MsgAccountTaken   = "帳號已使用"
	MsgBadFormat      = "格式不符"
	MsgImageTooLarge  = "檔案太大"
	MsgInvalidPrice   = "價格格式錯誤"
	MsgServerError    = "伺服器錯誤"
)

// Status devuelve el código y el mensaje para un error.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEmptyOrder):
		return http.StatusBadRequest, MsgEmptyOrder
	case errors.Is(err, service.ErrAuthMissing):
		return http.StatusUnauthorized, MsgAuthMissing
	case errors.Is(err, service.ErrAuthExpired):
		return http.StatusUnauthorized, MsgAuthExpired
	case errors.Is(err, service.ErrAuthInvalid):
		return http.StatusBadRequest, MsgAuthInvalid
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrNoAccess):
		return http.StatusForbidden, MsgNoAccess
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusNotFound, MsgBadCredentials
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusBadRequest, MsgDuplicate
	case errors.Is(err, service.ErrInvalidPrice):
		return http.StatusBadRequest, MsgInvalidPrice
	case errors.Is(err, service.ErrNotImage), errors.Is(err, service.ErrUnknownCollection):
		return http.StatusBadRequest, MsgBadFormat
	case errors.Is(err, service.ErrImageTooLarge):
		return http.StatusBadRequest, MsgImageTooLarge
	default:
		return http.StatusInternalServerError, MsgServerError
	}
}

// Error escribe el error y aborta. Los 5xx se registran con el detalle;
// al cliente sólo le llega el mensaje.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	code, msg := Status(err)
	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(code, dto.Response{Success: false, Message: msg})
}

// Fail responde con un mensaje fijo, sin error de por medio.
func Fail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, dto.Response{Success: false, Message: msg})
}

// OK responde 200; con datas nil el sobre no lleva el campo.
func OK(c *gin.Context, msg string, datas any) {
	if datas == nil {
		c.JSON(http.StatusOK, dto.Response{Success: true, Message: msg})
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: msg, Datas: datas})
}
