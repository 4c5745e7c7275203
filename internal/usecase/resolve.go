package usecase

import (
	"fmt"
	"path/filepath"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
	"github.com/tranorrepository/h36m-fetch/internal/fsutil"
)

// maxTakeProbe bounds the search through numbered alternate takes.
const maxTakeProbe = 99

// resolveViewName finds the on-disk stem ("<action>.<camera>" or
// "<action> <take>.<camera>") naming a view's source files. The bare name is
// tried first, then takes 1..maxTakeProbe; the first stem whose 2D pose
// archive exists wins. Views registered in the catalog's override table skip
// probing entirely. When every candidate is absent the error wraps
// entity.ErrMissingData.
func (uc *PackSequencesUseCase) resolveViewName(subject, action, camera string) (string, error) {
	key := entity.ViewKey{Subject: subject, Action: action, Camera: camera}
	if stem, ok := uc.catalog.ResolvedNameOverride(key); ok {
		return stem, nil
	}

	stem := action + "." + camera
	for take := 0; take <= maxTakeProbe; take++ {
		if take > 0 {
			stem = fmt.Sprintf("%s %d.%s", action, take, camera)
		}
		if fsutil.Exists(uc.pose2DPath(subject, stem)) {
			return stem, nil
		}
	}

	return "", fmt.Errorf("%w for %s/%s.%s", entity.ErrMissingData, subject, action, camera)
}

func (uc *PackSequencesUseCase) pose2DPath(subject, stem string) string {
	return filepath.Join(uc.extractedRoot, subject, "Poses_D2_Positions", stem+".npz")
}

func (uc *PackSequencesUseCase) pose3DPath(subject, stem string) string {
	return filepath.Join(uc.extractedRoot, subject, "Poses_D3_Positions_mono_universal", stem+".npz")
}

func (uc *PackSequencesUseCase) videoPath(subject, stem string) string {
	return filepath.Join(uc.extractedRoot, subject, "Videos", stem+".mp4")
}

func (uc *PackSequencesUseCase) framesDir(subject, action, camera string) string {
	return filepath.Join(uc.processedRoot, subject, action, "imageSequence", camera)
}

func (uc *PackSequencesUseCase) annotPath(subject, action string) string {
	return filepath.Join(uc.processedRoot, subject, action, "annot.h5")
}
