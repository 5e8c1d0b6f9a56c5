package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurriculumFile is the YAML (and JSON) form of a curriculum
type CurriculumFile struct {
	Specialties []SpecialtySpec `yaml:"specialties" json:"specialties" validate:"dive"`
	Teachers    []TeacherSpec   `yaml:"teachers" json:"teachers" validate:"dive"`
	Groups      []GroupSpec     `yaml:"groups" json:"groups" validate:"dive"`
}

type SpecialtySpec struct {
	Name     string        `yaml:"name" json:"name" validate:"required"`
	Subjects []SubjectSpec `yaml:"subjects" json:"subjects" validate:"dive"`
}

type SubjectSpec struct {
	Name  string              `yaml:"name" json:"name" validate:"required"`
	Hours []SemesterHoursSpec `yaml:"hours" json:"hours" validate:"dive"`
}

type SemesterHoursSpec struct {
	Semester int `yaml:"semester" json:"semester" validate:"min=1"`
	Hours    int `yaml:"hours" json:"hours" validate:"min=0"`
}

type TeacherSpec struct {
	Name          string   `yaml:"name" json:"name" validate:"required"`
	Subject       string   `yaml:"subject" json:"subject" validate:"required"`
	Groups        []string `yaml:"groups" json:"groups" validate:"dive,required"`
	PreferredDays []int    `yaml:"preferredDays,omitempty" json:"preferredDays,omitempty" validate:"dive,min=0,max=4"`
}

type GroupSpec struct {
	Name      string `yaml:"name" json:"name" validate:"required"`
	Specialty string `yaml:"specialty" json:"specialty" validate:"required"`
	Semester  int    `yaml:"semester" json:"semester" validate:"min=1"`
}

// LoadCurriculumFromPath loads and validates a curriculum file
func LoadCurriculumFromPath(path string) (*CurriculumFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curriculum file: %w", err)
	}

	var curriculum CurriculumFile
	if err := yaml.Unmarshal(data, &curriculum); err != nil {
		return nil, fmt.Errorf("failed to parse curriculum file: %w", err)
	}

	if err := ValidateCurriculum(&curriculum); err != nil {
		return nil, err
	}

	return &curriculum, nil
}

type subjectSemester struct {
	subject  string
	semester int
}

// ValidateCurriculum checks field rules, that specialty and group names are unique and that
// each subject declares a semester at most once per specialty
func ValidateCurriculum(curriculum *CurriculumFile) error {
	if err := validate.Struct(curriculum); err != nil {
		return fmt.Errorf("curriculum validation failed: %w", err)
	}

	specialties := make(map[string]bool, len(curriculum.Specialties))
	for i, specialty := range curriculum.Specialties {
		if specialties[specialty.Name] {
			return fmt.Errorf("duplicate specialty %q in specialties[%d]", specialty.Name, i)
		}
		specialties[specialty.Name] = true

		semesters := make(map[subjectSemester]bool)
		for j, subject := range specialty.Subjects {
			for _, hours := range subject.Hours {
				key := subjectSemester{subject.Name, hours.Semester}
				if semesters[key] {
					return fmt.Errorf("specialties[%d].subjects[%d]: duplicate hours for %q semester %d in specialty %q",
						i, j, subject.Name, hours.Semester, specialty.Name)
				}
				semesters[key] = true
			}
		}
	}

	groups := make(map[string]bool, len(curriculum.Groups))
	for i, group := range curriculum.Groups {
		if groups[group.Name] {
			return fmt.Errorf("duplicate group %q in groups[%d]", group.Name, i)
		}
		groups[group.Name] = true
	}

	return nil
}
