package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-staking/internal/staking/model"
)

// ResultStore writes the grouped-by-staker and ranked-by-provider result files.
type ResultStore struct {
	groupsPath  string
	rankingPath string
}

// NewResultStore constructs a ResultStore.
func NewResultStore(groupsPath, rankingPath string) *ResultStore {
	return &ResultStore{
		groupsPath:  groupsPath,
		rankingPath: rankingPath,
	}
}

// WriteStakerGroups writes group as an indented JSON object in first-seen staker order.
func (s *ResultStore) WriteStakerGroups(group *model.StakerGroup) error {
	if group == nil {
		group = model.NewStakerGroup()
	}
	return writeIndented(s.groupsPath, group)
}

// LoadStakerGroups reads the grouped-by-staker file.
func (s *ResultStore) LoadStakerGroups() (*model.StakerGroup, error) {
	data, err := os.ReadFile(s.groupsPath)
	if err != nil {
		return nil, fmt.Errorf("read staker groups: %w", err)
	}
	group := model.NewStakerGroup()
	if err := json.Unmarshal(data, group); err != nil {
		return nil, fmt.Errorf("decode staker groups %s: %w", s.groupsPath, err)
	}
	return group, nil
}

// WriteProviderRanking writes ranking as an indented JSON object in rank order.
func (s *ResultStore) WriteProviderRanking(ranking model.ProviderRanking) error {
	return writeIndented(s.rankingPath, ranking)
}
