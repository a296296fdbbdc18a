package commands

import (
	"io"

	"github.com/battlesnakeio/arena/store"
	"github.com/battlesnakeio/arena/store/filestore"
	"github.com/battlesnakeio/arena/store/redis"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// openStore builds the store named by --backend. The returned func releases
// it and is safe to call when the store holds nothing.
func openStore(name, args string) (store.Store, func(), error) {
	var s store.Store
	switch name {
	case "inmem":
		s = store.InMemStore()
	case "file":
		s = filestore.NewFileStore(args)
	case "redis":
		rs, err := redis.NewStore(args)
		if err != nil {
			return nil, nil, err
		}
		s = rs
	default:
		return nil, nil, errors.Errorf("invalid backend %q", name)
	}

	s = store.InstrumentStore(s)
	closer := func() {
		c, ok := s.(io.Closer)
		if !ok {
			return
		}
		if err := c.Close(); err != nil {
			log.WithError(err).WithField("backend", name).Error("unable to close store")
		}
	}
	return s, closer, nil
}
