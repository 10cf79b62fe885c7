package tools

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func JsonEncode(value interface{}) string {
	bs, err := json.Marshal(&value)
	if err != nil {
		logrus.Fatalf(`unable to json marshal "%v"`, value)
	}
	return string(bs)
}
