package usecase

import "context"

// ProcessAll walks the full cross-product of catalog subjects and actions,
// packaging each sequence in turn. Sequences are independent; the first fatal
// error stops the batch, and a rerun picks up where it left off thanks to the
// skip-if-extracted and overwrite-on-write behavior of the lower stages.
func (uc *PackSequencesUseCase) ProcessAll(ctx context.Context) error {
	for _, subject := range uc.catalog.Subjects() {
		for _, action := range uc.catalog.Actions() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := uc.ProcessSequence(ctx, subject, action); err != nil {
				return err
			}
		}
	}
	return nil
}
