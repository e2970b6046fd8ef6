package protoio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bufbuild/protocompile"
	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
)

const defaultCacheSize = 64

// DefaultCompiler serves Load calls for .proto inputs.
var DefaultCompiler = NewCompiler(defaultCacheSize)

// Compiler compiles .proto sources into FileDescriptorProtos with standard
// source info, caching results by content hash so repeated merges of
// unchanged inputs skip compilation.
type Compiler struct {
	cache *lru.Cache[string, *descriptorpb.FileDescriptorProto]
}

// NewCompiler creates a compiler whose cache holds up to size descriptors.
func NewCompiler(size int) *Compiler {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, _ := lru.New[string, *descriptorpb.FileDescriptorProto](size)
	return &Compiler{cache: cache}
}

// CompileFile compiles a single .proto file. Imports are resolved relative
// to the file's own directory, with the well-known types supplied by the
// standard import resolver. The returned descriptor is a private copy.
func (c *Compiler) CompileFile(ctx context.Context, path string) (*descriptorpb.FileDescriptorProto, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading proto %s: %w", path, err)
	}

	key := contentKey(path, content)
	if fd, ok := c.cache.Get(key); ok {
		return proto.Clone(fd).(*descriptorpb.FileDescriptorProto), nil
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			ImportPaths: []string{filepath.Dir(path)},
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	files, err := compiler.Compile(ctx, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("compiling %s: no files produced", path)
	}

	fd := protodesc.ToFileDescriptorProto(files[0])
	c.cache.Add(key, fd)
	return proto.Clone(fd).(*descriptorpb.FileDescriptorProto), nil
}

func contentKey(path string, content []byte) string {
	sum := sha256.Sum256(content)
	return path + ":" + hex.EncodeToString(sum[:])
}
