package rpcserver

import (
	_ "embed"
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/funvibe/radixquest/internal/config"
)

const protoFile = "radix.proto"

//go:embed radix.proto
var protoSource string

// LoadService parses the embedded service definition.
func LoadService() (*desc.ServiceDescriptor, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{protoFile: protoSource}),
	}
	fds, err := parser.ParseFiles(protoFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse proto: %w", err)
	}
	sd := fds[0].FindService(config.ServiceName)
	if sd == nil {
		return nil, fmt.Errorf("service %s not found in %s", config.ServiceName, protoFile)
	}
	if err := checkSchema(sd); err != nil {
		return nil, err
	}
	return sd, nil
}

type fieldSpec struct {
	name string
	typ  descriptorpb.FieldDescriptorProto_Type
}

var (
	requestFields = []fieldSpec{
		{"expression", descriptorpb.FieldDescriptorProto_TYPE_STRING},
		{"input_base", descriptorpb.FieldDescriptorProto_TYPE_STRING},
		{"display_base", descriptorpb.FieldDescriptorProto_TYPE_STRING},
		{"mode", descriptorpb.FieldDescriptorProto_TYPE_STRING},
		{"bit_width", descriptorpb.FieldDescriptorProto_TYPE_INT32},
		{"signedness", descriptorpb.FieldDescriptorProto_TYPE_STRING},
	}
	responseFields = []fieldSpec{
		{"primary", descriptorpb.FieldDescriptorProto_TYPE_STRING},
		{"alternates", descriptorpb.FieldDescriptorProto_TYPE_MESSAGE},
		{"bits", descriptorpb.FieldDescriptorProto_TYPE_STRING},
		{"note", descriptorpb.FieldDescriptorProto_TYPE_STRING},
		{"kind", descriptorpb.FieldDescriptorProto_TYPE_STRING},
	}
)

// checkSchema verifies the fields the handler reads and writes by name.
func checkSchema(sd *desc.ServiceDescriptor) error {
	md := sd.FindMethodByName(config.EvaluateMethod)
	if md == nil {
		return fmt.Errorf("method %s not found in service %s", config.EvaluateMethod, sd.GetFullyQualifiedName())
	}
	if md.IsClientStreaming() || md.IsServerStreaming() {
		return fmt.Errorf("method %s must be unary", md.GetFullyQualifiedName())
	}
	if err := checkFields(md.GetInputType(), requestFields); err != nil {
		return err
	}
	return checkFields(md.GetOutputType(), responseFields)
}

func checkFields(msg *desc.MessageDescriptor, specs []fieldSpec) error {
	for _, want := range specs {
		fd := msg.FindFieldByName(want.name)
		if fd == nil {
			return fmt.Errorf("%s: missing field %s", msg.GetFullyQualifiedName(), want.name)
		}
		if fd.GetType() != want.typ {
			return fmt.Errorf("%s.%s: type %v, want %v", msg.GetFullyQualifiedName(), want.name, fd.GetType(), want.typ)
		}
	}
	return nil
}
