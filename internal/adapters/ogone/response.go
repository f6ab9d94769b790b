package ogone

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/kevin07696/gateway-client/internal/domain"
	pkgerrors "github.com/kevin07696/gateway-client/pkg/errors"
)

const htmlAnswerKey = "HTML_ANSWER"

// parseBody decodes the gateway's XML response into a flat map: the root
// element's attributes, plus the text of an HTML_ANSWER element when the
// response carries a 3-D Secure step-up fragment. HTML_ANSWER is an element,
// not an attribute, so it needs its own extraction.
func parseBody(raw []byte) (map[string]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	params := make(map[string]string)
	sawRoot := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, pkgerrors.NewParseError(err, string(raw))
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !sawRoot {
			for _, attr := range start.Attr {
				params[attr.Name.Local] = attr.Value
			}
			sawRoot = true
			continue
		}
		if start.Name.Local == htmlAnswerKey {
			var fragment struct {
				Value string `xml:",chardata"`
			}
			if err := dec.DecodeElement(&fragment, &start); err != nil {
				return nil, pkgerrors.NewParseError(err, string(raw))
			}
			params[htmlAnswerKey] = fragment.Value
		}
	}

	if !sawRoot {
		return nil, pkgerrors.NewParseError(errors.New("response has no root element"), string(raw))
	}
	return params, nil
}

// normalize classifies a parsed response. Approval means the numeric error
// code is zero; any other value, including an unparsable one, is a decline.
func normalize(params map[string]string, action string, testMode bool) *domain.Result {
	success := isApproved(params["NCERROR"])

	return &domain.Result{
		Success:       success,
		Message:       messageFrom(params, success),
		Authorization: authorizationFrom(params, action),
		Params:        params,
		AVSResult:     verificationFrom(avsCodes, params["AAVCheck"]),
		CVVResult:     verificationFrom(cvvCodes, params["CVCCheck"]),
		TestMode:      testMode,
	}
}

func isApproved(ncError string) bool {
	code, err := strconv.Atoi(strings.TrimSpace(ncError))
	return err == nil && code == 0
}

func messageFrom(params map[string]string, success bool) string {
	if success {
		return domain.ApprovedMessage
	}
	raw := params["NCERRORPLUS"]
	if raw == "" {
		return "The transaction failed"
	}
	return domain.FormatProviderMessage(raw)
}

// authorizationFrom builds the composite token PAYID;ACTION. Follow-up calls
// need the action to disambiguate what state the payment id is in.
func authorizationFrom(params map[string]string, action string) string {
	payID := params["PAYID"]
	if payID == "" {
		return ""
	}
	return payID + ";" + action
}
