package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"

	"github.com/kevinwuu/flightlag/internal/store"
)

// MasterFrame loads the joined flight-weather rows into a dataframe.
func MasterFrame(ctx context.Context, st store.Store) (dataframe.DataFrame, error) {
	rows, err := st.MasterRows(ctx)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	if len(rows) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("no joined flight-weather rows")
	}

	df := dataframe.LoadStructs(rows)
	if df.Error() != nil {
		return dataframe.DataFrame{}, df.Error()
	}
	return df, nil
}

// WriteMasterCSV exports the joined flight-weather table as CSV.
func WriteMasterCSV(ctx context.Context, st store.Store, w io.Writer) (rows, cols int, err error) {
	df, err := MasterFrame(ctx, st)
	if err != nil {
		return 0, 0, err
	}
	if err := df.WriteCSV(w); err != nil {
		return 0, 0, err
	}
	return df.Nrow(), df.Ncol(), nil
}
