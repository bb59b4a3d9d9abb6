package errorreporting

import (
	"context"

	"cloud.google.com/go/errorreporting"

	"github.com/pajkicdj/POC-user-product-flow/common"
)

var erc *errorreporting.Client

type Metadata struct {
	User  string
	Stack []byte
}

// Init creates the error reporting client. Outside production it is a no-op and
// Report discards errors.
func Init(ctx context.Context) error {
	if !common.Production || common.IsLocalhost {
		return nil
	}

	c, err := errorreporting.NewClient(ctx, common.ProjectID, errorreporting.Config{
		ServiceName:    common.ServiceName,
		ServiceVersion: common.ServiceVersion,
	})
	if err != nil {
		return err
	}

	erc = c

	return nil
}

func Report(err error, md *Metadata) {
	if err == nil || erc == nil {
		return
	}

	e := errorreporting.Entry{
		Error: err,
	}

	if md != nil {
		e.User = md.User
		e.Stack = md.Stack
	}

	erc.Report(e)
}

// Close flushes pending reports.
func Close() error {
	if erc == nil {
		return nil
	}

	return erc.Close()
}
