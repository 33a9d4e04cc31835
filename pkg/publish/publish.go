// Package publish writes rendered documents to storage.
//
// A Publisher renders an element through a muon.Engine and hands the bytes
// to a Store. Two stores are provided: FileStore writes under a local
// directory and S3Store uploads to a bucket.
//
//	store := publish.NewFileStore("dist")
//	pub := publish.New(engine, store)
//	err := pub.Publish(ctx, "index.html", page)
package publish

import (
	"context"
	"path"
	"strings"

	"github.com/sortiz4/muon"
	"github.com/sortiz4/muon/internal/errors"
	"github.com/sortiz4/muon/pkg/markup"
)

// ContentTypeHTML is the content type stored with published documents.
const ContentTypeHTML = "text/html; charset=utf-8"

// Store persists published objects under slash-separated keys.
type Store interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// Publisher renders elements and stores the results.
type Publisher struct {
	engine *muon.Engine
	store  Store
}

// New creates a Publisher. A nil engine means muon.Default().
func New(engine *muon.Engine, store Store) *Publisher {
	if engine == nil {
		engine = muon.Default()
	}
	return &Publisher{engine: engine, store: store}
}

// Publish renders el and stores it at key.
func (p *Publisher) Publish(ctx context.Context, key string, el markup.Element) error {
	clean, err := CleanKey(key)
	if err != nil {
		return err
	}

	html, err := p.engine.Render(ctx, el)
	if err != nil {
		return errors.New("E161").WithDetail(clean).Wrap(err)
	}

	if err := p.store.Put(ctx, clean, []byte(html), ContentTypeHTML); err != nil {
		return errors.New("E161").WithDetail(clean).Wrap(err)
	}

	p.engine.Logger().InfoContext(ctx, "published",
		"key", clean,
		"bytes", len(html),
	)
	return nil
}

// CleanKey normalizes key to a relative slash path inside the store root.
// Keys ending in a slash name the directory's index.html.
func CleanKey(key string) (string, error) {
	k := strings.ReplaceAll(key, "\\", "/")
	if strings.HasSuffix(k, "/") {
		k += "index.html"
	}
	k = strings.TrimPrefix(path.Clean("/"+k), "/")
	if k == "" {
		return "", errors.New("E161").WithDetail("empty key")
	}
	return k, nil
}
