package port

import "github.com/tranorrepository/h36m-fetch/internal/domain/entity"

// AnnotationWriter persists a sequence's merged datasets as one archive file,
// replacing any archive already at that path.
type AnnotationWriter interface {
	WriteAnnotations(path string, datasets []entity.Dataset) error
}
