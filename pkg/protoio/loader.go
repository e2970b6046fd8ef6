package protoio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/types/descriptorpb"

	"protoshadow/pkg/annotations"
)

// Load reads a FileDescriptorProto from path. A .proto source is compiled
// first; anything else is parsed as text-format descriptor output, with
// annotation option extensions resolved against the global registry.
func Load(ctx context.Context, path string) (*descriptorpb.FileDescriptorProto, error) {
	if strings.EqualFold(filepath.Ext(path), ".proto") {
		return DefaultCompiler.CompileFile(ctx, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor %s: %w", path, err)
	}
	fd := &descriptorpb.FileDescriptorProto{}
	opts := prototext.UnmarshalOptions{Resolver: annotations.Resolver()}
	if err := opts.Unmarshal(data, fd); err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return fd, nil
}

// Store writes fd to path as multiline text format.
func Store(path string, fd *descriptorpb.FileDescriptorProto) error {
	opts := prototext.MarshalOptions{
		Multiline: true,
		Indent:    "  ",
		Resolver:  annotations.Resolver(),
	}
	data, err := opts.Marshal(fd)
	if err != nil {
		return fmt.Errorf("serializing descriptor %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing descriptor %s: %w", path, err)
	}
	return nil
}
