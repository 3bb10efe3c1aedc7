package imagegen

import (
	"fmt"
	"iter"

	"github.com/bitfold/sdxlgen/pkg/stability"
)

// filterWarning mirrors the provider guidance shown when the safety system
// rejects a request.
const filterWarning = "Your request activated the API's safety filters and could not be processed. Please modify the prompt and try again."

// resolution is the reduced view of one answer stream: the first decisive
// artifact, or a description of why there was none.
type resolution struct {
	outcome    Outcome
	binary     []byte
	seed       uint32
	reason     string
	diagnostic string
}

// resolveAnswers reduces an answer stream to a single resolution. Artifacts
// are scanned flattened, in arrival order. The first FILTER finish wins,
// then the first image artifact; a stream that ends with neither reports
// what it saw last. Per artifact the filter check runs first, so an image
// artifact whose finish reason is FILTER counts as filtered.
func resolveAnswers(answers iter.Seq2[*stability.Answer, error]) (*resolution, error) {
	var last *stability.Artifact

	for answer, err := range answers {
		if err != nil {
			return nil, err
		}
		for i := range answer.Artifacts {
			artifact := &answer.Artifacts[i]

			if artifact.FinishReason == stability.FinishFilter {
				return &resolution{
					outcome: OutcomeFiltered,
					reason:  filterWarning,
				}, nil
			}
			if artifact.Type == stability.ArtifactImage {
				return &resolution{
					outcome: OutcomeSaved,
					binary:  artifact.Binary,
					seed:    artifact.Seed,
				}, nil
			}
			last = artifact
		}
	}

	return &resolution{
		outcome:    OutcomeEmpty,
		diagnostic: describeLast(last),
	}, nil
}

// describeLast summarizes what an exhausted stream delivered last. The text
// is diagnostic only and makes no promises about its shape.
func describeLast(artifact *stability.Artifact) string {
	if artifact == nil {
		return "provider returned no artifacts"
	}
	return fmt.Sprintf("last artifact: type=%s finish_reason=%s", artifact.Type, artifact.FinishReason)
}
