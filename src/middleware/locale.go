package middleware

import (
	"github.com/ARQAP/quanti-backend/src/i18n"
	"github.com/gin-gonic/gin"
)

const localizerKey = "localizer"

// Locale picks the catalogue matching Accept-Language for the request
func Locale(translator *i18n.Translator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		localizer := translator.For(translator.Match(ctx.GetHeader("Accept-Language")))
		ctx.Set(localizerKey, localizer)
		ctx.Header("Content-Language", localizer.Tag().String())
		ctx.Next()
	}
}

// Localizer returns the request localizer set by Locale
func Localizer(ctx *gin.Context) *i18n.Localizer {
	if v, ok := ctx.Get(localizerKey); ok {
		if localizer, ok := v.(*i18n.Localizer); ok {
			return localizer
		}
	}
	return nil
}
