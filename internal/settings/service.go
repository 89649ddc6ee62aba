package settings

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get() (Settings, error) {
	return s.repo.Get()
}

func (s *Service) Update(patch Patch) (Settings, error) {
	return s.repo.Update(patch)
}

func (s *Service) Replace(rec Settings) error {
	return s.repo.Replace(rec)
}
