package rpcserver

import (
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"

	"github.com/funvibe/radixquest/pkg/radix"
)

// Request mirrors radix.v1.EvaluateRequest.
type Request struct {
	Expression  string
	InputBase   string
	DisplayBase string
	Mode        string
	BitWidth    int32
	// Signedness is "signed", "unsigned" or empty for the server default.
	Signedness  string
}

// Response mirrors radix.v1.EvaluateResponse.
type Response struct {
	Primary    string
	Alternates []radix.Entry
	Bits       string
	Note       string
	Kind       string
}

func stringField(msg *dynamic.Message, name string) string {
	s, _ := msg.GetFieldByName(name).(string)
	return s
}

func decodeRequest(msg *dynamic.Message) Request {
	width, _ := msg.GetFieldByName("bit_width").(int32)
	return Request{
		Expression:  stringField(msg, "expression"),
		InputBase:   stringField(msg, "input_base"),
		DisplayBase: stringField(msg, "display_base"),
		Mode:        stringField(msg, "mode"),
		BitWidth:    width,
		Signedness:  stringField(msg, "signedness"),
	}
}

func encodeRequest(md *desc.MessageDescriptor, req Request) (*dynamic.Message, error) {
	msg := dynamic.NewMessage(md)
	fields := []struct {
		name string
		val  interface{}
	}{
		{"expression", req.Expression},
		{"input_base", req.InputBase},
		{"display_base", req.DisplayBase},
		{"mode", req.Mode},
		{"bit_width", req.BitWidth},
		{"signedness", req.Signedness},
	}
	for _, f := range fields {
		if err := msg.TrySetFieldByName(f.name, f.val); err != nil {
			return nil, fmt.Errorf("setting %s: %w", f.name, err)
		}
	}
	return msg, nil
}

func encodeResponse(md *desc.MessageDescriptor, resp Response) (*dynamic.Message, error) {
	msg := dynamic.NewMessage(md)
	for name, val := range map[string]string{
		"primary": resp.Primary,
		"bits":    resp.Bits,
		"note":    resp.Note,
		"kind":    resp.Kind,
	} {
		if err := msg.TrySetFieldByName(name, val); err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
	}

	altType := md.FindFieldByName("alternates").GetMessageType()
	for _, e := range resp.Alternates {
		alt := dynamic.NewMessage(altType)
		if err := alt.TrySetFieldByName("label", e.Label); err != nil {
			return nil, err
		}
		if err := alt.TrySetFieldByName("text", e.Text); err != nil {
			return nil, err
		}
		if err := msg.TryAddRepeatedFieldByName("alternates", alt); err != nil {
			return nil, fmt.Errorf("adding alternate: %w", err)
		}
	}
	return msg, nil
}

func decodeResponse(msg *dynamic.Message) Response {
	resp := Response{
		Primary: stringField(msg, "primary"),
		Bits:    stringField(msg, "bits"),
		Note:    stringField(msg, "note"),
		Kind:    stringField(msg, "kind"),
	}
	alts, _ := msg.GetFieldByName("alternates").([]interface{})
	for _, a := range alts {
		alt, ok := a.(*dynamic.Message)
		if !ok {
			continue
		}
		resp.Alternates = append(resp.Alternates, radix.Entry{
			Label: stringField(alt, "label"),
			Text:  stringField(alt, "text"),
		})
	}
	return resp
}
