package encode

import "github.com/sirupsen/logrus"

var logger = logrus.New()
