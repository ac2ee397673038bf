package utils

import (
	"bytes"
	"encoding/json"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var compactJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// PrettyJson indenta com dois espaços; bytes que não são JSON voltam como vieram
func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if reflect.TypeOf(in) != reflect.TypeOf([]byte{}) {
		buffer, err = compactJSON.Marshal(in)
		if err != nil {
			logrus.Error(err)
			return ""
		}
	} else {
		buffer = in.([]byte)
	}

	var out bytes.Buffer
	if err = json.Indent(&out, buffer, "", "  "); err != nil {
		logrus.Error(err)
		return string(buffer)
	}

	return out.String()
}
