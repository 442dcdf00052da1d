package propiedades

import (
	"sync"
)

// memStore is an in-memory Store implementation for handler tests. It
// mirrors the COALESCE semantics of the SQL store: nil patch fields keep
// the stored value.
type memStore struct {
	mutex sync.RWMutex
	rows  map[string]Propiedad
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]Propiedad)}
}

func (s *memStore) List() ([]Propiedad, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	result := []Propiedad{}
	for _, p := range s.rows {
		result = append(result, p)
	}
	return result, nil
}

func (s *memStore) GetByCode(codigo string) (Propiedad, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	p, ok := s.rows[codigo]
	if !ok {
		return Propiedad{}, ErrNotFound
	}
	return p, nil
}

func (s *memStore) ExistsByCode(codigo string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.rows[codigo]
	return ok, nil
}

func (s *memStore) Insert(p Propiedad) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.rows[p.CodigoID]; ok {
		return ErrCodigoEnUso{Codigo: p.CodigoID}
	}
	s.rows[p.CodigoID] = p
	return nil
}

func (s *memStore) UpdateByCode(codigo string, patch Patch) (int64, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	p, ok := s.rows[codigo]
	if !ok {
		return 0, nil
	}
	if patch.Pais != nil {
		p.Pais = *patch.Pais
	}
	if patch.Ciudad != nil {
		p.Ciudad = *patch.Ciudad
	}
	if patch.Direccion != nil {
		p.Direccion = *patch.Direccion
	}
	if patch.Ambientes != nil {
		p.Ambientes = *patch.Ambientes
	}
	if patch.MetrosCuadrados != nil {
		p.MetrosCuadrados = *patch.MetrosCuadrados
	}
	if patch.Precio != nil {
		p.Precio = *patch.Precio
	}
	if patch.TipoContratacion != nil {
		p.TipoContratacion = *patch.TipoContratacion
	}
	if patch.Estado != nil {
		p.Estado = *patch.Estado
	}
	if patch.Descripcion != nil {
		p.Descripcion = *patch.Descripcion
	}
	s.rows[codigo] = p
	return 1, nil
}

func (s *memStore) DeleteByCode(codigo string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.rows, codigo)
	return nil
}

func (s *memStore) count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.rows)
}
